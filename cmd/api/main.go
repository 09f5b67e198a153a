// @title           Estla Skill Server API
// @version         1.0
// @description     Kakao i Open Builder skill webhook answering from the estla support corpus, plus document and admin endpoints.
// @termsOfService  http://swagger.io/terms/

// @contact.name    estla CS
// @contact.url     https://estla.co.kr/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8081
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

func main() {
	Execute()
}
