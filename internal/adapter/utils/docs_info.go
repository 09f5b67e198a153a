package utils

//run redis
//docker run -p 6379:6379 -d redis

//serve a local corpus
//go run ./cmd/api serve --content-root ./HTML_Conversion --external-url http://localhost:8081

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
