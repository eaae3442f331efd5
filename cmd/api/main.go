package main

// @title UrbanNest Properties API
// @version 1.0
// @description Property listing backend with cached search, CSV bulk import and AI market evaluation.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
