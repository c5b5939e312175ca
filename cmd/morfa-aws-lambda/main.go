package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"

	"github.com/gveselov/morfa"
	"github.com/gveselov/morfa/adapters/lexdict"
	"github.com/gveselov/morfa/adapters/udpipe"
	"github.com/gveselov/morfa/adapters/webapi"
	"github.com/gveselov/morfa/service"
)

var models = map[string]string{
	"russian": "russian-syntagrus-ud-2.12-230717",
	"spanish": "spanish-ancora-ud-2.12-230717",
	"french":  "french-gsd-ud-2.12-230717",
	"hebrew":  "hebrew-htb-ud-2.12-230717",
	"arabic":  "arabic-padt-ud-2.12-230717",
}

func main() {
	udpipeURL := os.Getenv("UDPIPE_URL")
	if udpipeURL == "" {
		udpipeURL = "https://lindat.mff.cuni.cz/services/udpipe/api"
	}

	languages := map[string]*service.Language{
		"russian": {Catalog: morfa.Russian},
		"spanish": {Catalog: morfa.Spanish},
		"french":  {Catalog: morfa.French},
		"hebrew":  {Catalog: morfa.Hebrew},
		"arabic":  {Catalog: morfa.Arabic},
	}
	for name, language := range languages {
		language.Taggers = []morfa.Tagger{udpipe.New("udpipe", udpipeURL, models[name])}
	}

	if lexiconPath := os.Getenv("LEXICON_PATH"); lexiconPath != "" {
		dict, err := lexdict.Open(lexiconPath, "lexicon")
		if err != nil {
			log.Fatalln("Failed to open lexicon:", err)
		}

		russian := languages["russian"]
		russian.Taggers = append(russian.Taggers, dict)
		russian.Morph = dict
	}

	svc, err := service.New(languages)
	if err != nil {
		log.Fatalln("Invalid configuration:", err)
	}

	var origins []string
	if originsEnv := os.Getenv("CORS_ORIGINS"); originsEnv != "" {
		origins = strings.Split(originsEnv, ",")
	}

	api := webapi.SetupWithoutListener(origins)
	webapi.Analysis(api.Group(""), svc)

	adapter := echoadapter.New(api)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
