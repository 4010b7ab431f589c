// Package importer loads an optional YAML seed file of bookmarks into a
// single account at startup.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store/sqlite"
)

// SeedFile is the on-disk format: one owner (by email, the account must
// already exist) and the bookmarks to import for it.
type SeedFile struct {
	Owner     string      `yaml:"owner"`
	Bookmarks []SeedEntry `yaml:"bookmarks"`
}

type SeedEntry struct {
	Title    string   `yaml:"title"`
	URL      string   `yaml:"url"`
	Note     string   `yaml:"note"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

// Seeder imports bookmarks from a YAML file.
type Seeder struct {
	filePath string
	store    *sqlite.Store
	logger   logger.Logger
}

func NewSeeder(filePath string, store *sqlite.Store, log logger.Logger) *Seeder {
	return &Seeder{
		filePath: filePath,
		store:    store,
		logger:   log,
	}
}

// Run reads and imports the seed file. Bookmarks that already exist for
// the owner (same url) are skipped; invalid entries are skipped with a
// warning. A missing owner account is an error.
func (s *Seeder) Run(ctx context.Context) error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	if seed.Owner == "" {
		return fmt.Errorf("seed file has no owner email")
	}

	owner, err := s.store.UserByEmail(ctx, seed.Owner)
	if err != nil {
		return fmt.Errorf("seed owner %q: %w", seed.Owner, err)
	}

	imported, skipped := 0, 0
	for _, entry := range seed.Bookmarks {
		in := domain.NewBookmarkInput{
			Title:    entry.Title,
			URL:      entry.URL,
			Note:     entry.Note,
			Category: entry.Category,
			Tags:     entry.Tags,
		}
		in.Normalize()
		if err := in.Validate(); err != nil {
			s.logger.Warn("skipping invalid seed entry",
				logger.String("url", entry.URL),
				logger.Error(err))
			skipped++
			continue
		}

		if _, err := s.store.CreateBookmark(ctx, owner.ID, in); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			return fmt.Errorf("importing %q: %w", entry.URL, err)
		}
		imported++
	}

	s.logger.Info("seed import completed",
		logger.String("owner", seed.Owner),
		logger.Int("imported", imported),
		logger.Int("skipped", skipped))
	return nil
}
