package main

import (
	"flag"
	"log"
	"strings"

	"github.com/gveselov/morfa"
	"github.com/gveselov/morfa/adapters/lexdict"
	"github.com/gveselov/morfa/adapters/udpipe"
	"github.com/gveselov/morfa/adapters/webapi"
	"github.com/gveselov/morfa/adapters/yamlcatalog"
	"github.com/gveselov/morfa/service"
)

var flagAddr = flag.String("addr", "localhost:5001", "Listen address")
var flagUDPipeURL = flag.String("udpipe-url", "https://lindat.mff.cuni.cz/services/udpipe/api", "UDPipe REST endpoint")
var flagLexicon = flag.String("lexicon", "", "Russian lexicon file (YAML or compiled JSON)")
var flagOrigins = flag.String("origins", "http://localhost:5173,http://localhost:3000", "Comma-separated CORS origins")
var flagCatalog = flag.String("catalog", "", "Extra catalog YAML file to serve")
var flagCatalogModel = flag.String("catalog-model", "", "UDPipe model for the extra catalog's language")

var models = map[string]string{
	"russian": "russian-syntagrus-ud-2.12-230717",
	"spanish": "spanish-ancora-ud-2.12-230717",
	"french":  "french-gsd-ud-2.12-230717",
	"hebrew":  "hebrew-htb-ud-2.12-230717",
	"arabic":  "arabic-padt-ud-2.12-230717",
}

func main() {
	flag.Parse()

	languages := map[string]*service.Language{
		"russian": {Catalog: morfa.Russian},
		"spanish": {Catalog: morfa.Spanish},
		"french":  {Catalog: morfa.French},
		"hebrew":  {Catalog: morfa.Hebrew},
		"arabic":  {Catalog: morfa.Arabic},
	}
	for name, language := range languages {
		language.Taggers = []morfa.Tagger{udpipe.New("udpipe", *flagUDPipeURL, models[name])}
	}

	if *flagLexicon != "" {
		dict, err := lexdict.Open(*flagLexicon, "lexicon")
		if err != nil {
			log.Fatalln("Failed to open lexicon:", err)
		}

		russian := languages["russian"]
		russian.Taggers = append(russian.Taggers, dict)
		russian.Morph = dict
	}

	if *flagCatalog != "" {
		catalog, err := yamlcatalog.Open(*flagCatalog)
		if err != nil {
			log.Fatalln("Failed to load catalog:", err)
		}

		languages[catalog.Language] = &service.Language{
			Catalog: catalog,
			Taggers: []morfa.Tagger{udpipe.New("udpipe", *flagUDPipeURL, *flagCatalogModel)},
		}
	}

	svc, err := service.New(languages)
	if err != nil {
		log.Fatalln("Invalid configuration:", err)
	}
	log.Println("Languages configured:", strings.Join(svc.Languages(), ", "))

	api, errCh := webapi.Setup(*flagAddr, strings.Split(*flagOrigins, ","))
	webapi.Analysis(api.Group(""), svc)

	err = <-errCh
	if err != nil {
		log.Fatal("Failed to listen:", err)
	}
}
