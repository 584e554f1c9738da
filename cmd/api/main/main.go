//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/asatex/kyuyokeisan-api/apps/api/server"
	_ "github.com/asatex/kyuyokeisan-api/docs"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Social Insurance Premium API
// @version         1.0
// @description     Employee and employer shares of monthly health, nursing-care and pension premiums.

// @BasePath  /

var ginLambda *ginadapter.GinLambda

func init() {
	server.InitializeHandlers()

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req.QueryStringParameters, req.RequestContext.RequestID)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
