package main

import (
	"fmt"
	"os"

	"github.com/lukasz-zimnoch/dexly/identity"
	"github.com/lukasz-zimnoch/dexly/identity/inmem"
	"github.com/lukasz-zimnoch/dexly/identity/logrus"
)

func main() {
	config, err := readConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not read config: [%v]", err)
		os.Exit(1)
	}

	logger := logrus.ConfigureStandardLogger(
		config.Logging.Format,
		config.Logging.Level,
	)

	policy := identity.Policy{MaxLength: config.Policy.MaxLength}

	format := identity.FormatCanonical
	if config.Guid.Lenient {
		format = identity.FormatLenient
	}

	registry := inmem.NewIdentifierRegistry()

	failures := 0
	for _, entry := range config.Identifiers {
		entryLogger := logger.WithFields(map[string]interface{}{
			"value":    entry.Value,
			"category": entry.Category,
		})

		identifier, err := checkIdentifier(policy, format, entry)
		if err != nil {
			entryLogger.Errorf("invalid identifier: [%v]", err)
			failures++
			continue
		}

		if registry.Contains(identifier) {
			entryLogger.Warningf("duplicate identifier")
			continue
		}

		registry.Register(identifier)

		entryLogger.Debugf("identifier is valid")
	}

	logger.Infof(
		"checked [%v] identifiers; [%v] invalid, [%v] distinct",
		len(config.Identifiers),
		failures,
		registry.Size(),
	)

	if failures > 0 {
		os.Exit(1)
	}
}

func checkIdentifier(
	policy identity.Policy,
	format identity.GUIDFormat,
	entry Identifier,
) (identity.Identifier, error) {
	if entry.Category == identity.CategoryGUID {
		guid, err := identity.NewGUIDWithFormat(entry.Value, format)
		if err != nil {
			return identity.Identifier{}, err
		}

		return guid.Identifier, nil
	}

	return policy.NewIdentifier(entry.Value, entry.Category)
}
