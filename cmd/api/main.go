package main

import (
	_ "github.com/Telli/betts-ctis-sub020/docs"
	"github.com/Telli/betts-ctis-sub020/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CTIS Payment Service API
// @version         1.0
// @description     Payment gateway integration and reconciliation subsystem (ledger + webhooks) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
