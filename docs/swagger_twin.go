package docs

// @title           Driver Twin Service API
// @version         1.0
// @description     Behavioral digital twin for gig drivers. Learns a statistical profile from historical activity, simulates alternative weekly schedules and returns ranked earning scenarios with feasibility scores.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
