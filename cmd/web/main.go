// @title           PetSit API
// @version         1.0
// @description     Backend for a pet-sitting marketplace: owners post sitting requests, sitters publish availability and pick up matching requests.
// @contact.name    PetSit
// @contact.email   support@petsit.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "petsit_backend/internal/app"

func main() {
	app.Run()
}
