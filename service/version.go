package service

import (
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"
)

var (
	Version   = "v0.0.0"
	GitCommit = ""
	GitDate   = ""
	Meta      = "dev"
)

func DefaultFormatVersion() string {
	return FormatVersion(Version, GitCommit, GitDate, Meta)
}

func FormatVersion(version string, gitCommit string, gitDate string, meta string) string {
	v := version
	if gitCommit != "" {
		if len(gitCommit) >= 8 {
			v += "-" + gitCommit[:8]
		} else {
			v += "-" + gitCommit
		}
	}
	if gitDate != "" {
		v += "-" + gitDate
	}
	if meta != "" {
		v += "-" + meta
	}
	return v
}

// PrefixEnvVar returns the env-var names a flag is bound to, for the given service prefix.
func PrefixEnvVar(prefix, suffix string) []string {
	return []string{prefix + "_" + suffix}
}

type envVarFlag interface {
	GetEnvVars() []string
}

// ValidateEnvVars logs a warning for every env var with the service prefix that no flag reads.
// Env vars starting with one of the allowed prefixes are consumed elsewhere and skipped.
func ValidateEnvVars(prefix string, flags []cli.Flag, l log.Logger, allowed ...string) {
	for _, name := range unknownEnvVars(prefix, flags, os.Environ(), allowed) {
		l.Warn("Unknown env var", "name", name)
	}
}

func unknownEnvVars(prefix string, flags []cli.Flag, env []string, allowed []string) []string {
	known := make(map[string]struct{})
	for _, f := range flags {
		if ef, ok := f.(envVarFlag); ok {
			for _, name := range ef.GetEnvVars() {
				known[name] = struct{}{}
			}
		}
	}
	var out []string
outer:
	for _, kv := range env {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, prefix+"_") {
			continue
		}
		for _, a := range allowed {
			if strings.HasPrefix(name, a) {
				continue outer
			}
		}
		if _, ok := known[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}
