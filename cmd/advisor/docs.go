package main

// @title Shopping Advisor API
// @version 1.0
// @description Conversational and mood-based product recommendations with full observability (logging, tracing, metrics)

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
