package consult

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/extractor"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// UnreadablePlaceholder replaces the body of a file that could not be fetched or extracted
const UnreadablePlaceholder = "[could not read content]"

// Aggregator turns a folder listing into one labeled context blob
type Aggregator struct {
	storage  Storage
	registry *extractor.Registry
	cache    *cache.Cache
}

// NewAggregator creates an aggregator. A positive cacheTTL enables caching of
// extracted text keyed by file id and modification time.
func NewAggregator(storage Storage, registry *extractor.Registry, cacheTTL time.Duration) *Aggregator {
	a := &Aggregator{
		storage:  storage,
		registry: registry,
	}
	if cacheTTL > 0 {
		a.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return a
}

// BuildContext extracts every file in order and merges the results.
// Per-file failures become placeholder blocks and warnings; they never abort the batch.
func (a *Aggregator) BuildContext(ctx context.Context, files []entity.FileDescriptor) (string, []string) {
	docs, warnings := a.ExtractAll(ctx, files)
	return MergeContext(docs), warnings
}

// ExtractAll folds over files producing one ExtractedDocument per file
func (a *Aggregator) ExtractAll(ctx context.Context, files []entity.FileDescriptor) ([]entity.ExtractedDocument, []string) {
	docs := make([]entity.ExtractedDocument, 0, len(files))
	var warnings []string

	for _, f := range files {
		text, err := a.extract(ctx, f)
		if err != nil {
			ctxzap.Warn(ctx, "could not read file, using placeholder",
				zap.String("file_id", f.ID),
				zap.String("file_name", f.Name),
				zap.String("mime_type", f.MimeType),
				zap.Error(err),
			)
			warnings = append(warnings, fmt.Sprintf("%s: %v", f.Name, err))
			docs = append(docs, entity.ExtractedDocument{SourceName: f.Name, OK: false})
			continue
		}

		docs = append(docs, entity.ExtractedDocument{SourceName: f.Name, Text: text, OK: true})
	}

	return docs, warnings
}

func (a *Aggregator) extract(ctx context.Context, f entity.FileDescriptor) (string, error) {
	format, err := a.registry.Lookup(f.MimeType)
	if err != nil {
		return "", err
	}

	if format.Skip {
		ctxzap.Info(ctx, "skipping extraction for recognized but unsupported format",
			zap.String("file_name", f.Name),
			zap.String("mime_type", f.MimeType),
		)
		return format.Run(nil)
	}

	key := cacheKey(f)
	if a.cache != nil && key != "" {
		if cached, ok := a.cache.Get(key); ok {
			ctxzap.Debug(ctx, "extracted text served from cache", zap.String("file_id", f.ID))
			return cached.(string), nil
		}
	}

	var data []byte
	if format.ExportAs != "" {
		data, err = a.storage.Export(ctx, f.ID, format.ExportAs)
	} else {
		data, err = a.storage.Download(ctx, f.ID)
	}
	if err != nil {
		return "", err
	}

	text, err := format.Run(data)
	if err != nil {
		return "", err
	}

	if a.cache != nil && key != "" {
		a.cache.SetDefault(key, text)
	}

	return text, nil
}

func cacheKey(f entity.FileDescriptor) string {
	if f.ModifiedTime == "" {
		return ""
	}
	return f.ID + "@" + f.ModifiedTime
}

// MergeContext renders the documents as labeled blocks in order
func MergeContext(docs []entity.ExtractedDocument) string {
	var sb strings.Builder
	for _, d := range docs {
		body := d.Text
		if !d.OK {
			body = UnreadablePlaceholder
		}
		fmt.Fprintf(&sb, "--- %s ---\n%s\n\n", d.SourceName, body)
	}
	return sb.String()
}
