/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
// @title           Aidata Transfer API
// @version         2.0
// @description     Fault call transfer API server for school support records
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Static API key; transfer and manage capabilities use separate keys
package main

import "github.com/alperbenzer/transfer-process/cmd"

func main() {
	cmd.Execute()
}
