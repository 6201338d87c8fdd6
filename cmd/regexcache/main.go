package main

import (
	"github.com/TykTechnologies/regexcache"
	"github.com/TykTechnologies/regexcache/cli"
	logger "github.com/TykTechnologies/regexcache/log"
	"github.com/TykTechnologies/regexcache/regexp"
)

// VERSION is overridden at build time.
var VERSION = "v0.1.0-dev"

var log = logger.Get()

func main() {
	var conf regexcache.Config
	if err := regexcache.Load(&conf); err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if err := regexp.Setup(conf); err != nil {
		log.WithError(err).Fatal("Failed to set up pattern caches")
	}

	cli.Init(VERSION)
	cli.Parse()
}
