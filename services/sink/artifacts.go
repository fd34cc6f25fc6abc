package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"edivaldoleitao/tracksave/internal/browser"
	"edivaldoleitao/tracksave/internal/scraper"
	"edivaldoleitao/tracksave/logger"
)

// WriteArtifacts dumps a finished batch under
// {dir}/{category}_{timestamp}/products.json, plus a page.png screenshot of
// the session's current page when one is supplied. Artifacts are a local
// debugging aid; failures are logged and swallowed.
func WriteArtifacts(ctx context.Context, dir, category string, products []scraper.ScrapedProduct, session browser.Session) string {
	log := logger.ForSink()

	runDir := filepath.Join(dir, fmt.Sprintf("%s_%s", category, time.Now().Format("20060102_150405")))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", runDir).Msg("Artifact directory not created")
		return ""
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err == nil {
		err = os.WriteFile(filepath.Join(runDir, "products.json"), data, 0o644)
	}
	if err != nil {
		log.Warn().Err(err).Msg("products.json not written")
	}

	if session != nil {
		if png, err := session.Screenshot(ctx); err == nil {
			if err := os.WriteFile(filepath.Join(runDir, "page.png"), png, 0o644); err != nil {
				log.Warn().Err(err).Msg("page.png not written")
			}
		}
	}

	return runDir
}
