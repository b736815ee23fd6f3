package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/slighter12/go-lib/database/postgres"
)

// canonicalizeEnvKey maps an env var such as POSTGRES_MASTER_USERNAME onto
// the key path the YAML already spells (postgres.master.userName). Segments
// with no YAML counterpart keep their lower-case form.
func canonicalizeEnvKey(rawKey string, yamlKeys map[string]any) string {
	var path []string
	node := yamlKeys
	for _, segment := range strings.Split(rawKey, "_") {
		if segment == "" {
			continue
		}
		key, child := lookupFolded(node, foldKey(segment))
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func lookupFolded(node map[string]any, folded string) (string, map[string]any) {
	for key, value := range node {
		if foldKey(key) == folded {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return folded, nil
}

// foldKey lower-cases and drops everything but letters and digits.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index lacking a host or port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		field := func(name string) string {
			return getenv(fmt.Sprintf("POSTGRES_REPLICAS_%d_%s", i, name))
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}
		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
