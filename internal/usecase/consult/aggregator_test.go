package consult

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRegistry replaces the office extractors with deterministic functions
func stubRegistry() *extractor.Registry {
	r := extractor.NewRegistry()
	r.Register(extractor.Format{MimeType: entity.MimeTypeDOCX, Extract: func(data []byte) (string, error) {
		return "docx:" + string(data), nil
	}})
	r.Register(extractor.Format{MimeType: entity.MimeTypePPTX, Extract: func(data []byte) (string, error) {
		return "slide one\nslide two:" + string(data), nil
	}})
	r.Register(extractor.Format{MimeType: entity.MimeTypePDF, Extract: func(data []byte) (string, error) {
		if !strings.HasPrefix(string(data), "%PDF") {
			return "", errors.New("not a pdf")
		}
		return "pdf body", nil
	}})
	return r
}

func oneOfEachType() (*fakeStorage, []entity.FileDescriptor) {
	files := []entity.FileDescriptor{
		{ID: "1", Name: "a.txt", MimeType: entity.MimeTypePlainText},
		{ID: "2", Name: "b doc", MimeType: entity.MimeTypeGoogleDoc},
		{ID: "3", Name: "c.docx", MimeType: entity.MimeTypeDOCX},
		{ID: "4", Name: "d.pptx", MimeType: entity.MimeTypePPTX},
		{ID: "5", Name: "e.pdf", MimeType: entity.MimeTypePDF},
		{ID: "6", Name: "f.doc", MimeType: entity.MimeTypeLegacyWord},
	}
	s := newFakeStorage(files...)
	s.content["1"] = []byte("plain text")
	s.content["2"] = []byte("exported doc")
	s.content["3"] = []byte("word")
	s.content["4"] = []byte("deck")
	s.content["5"] = []byte("%PDF-1.4")
	s.content["6"] = []byte{0xd0, 0xcf}
	return s, files
}

func TestBuildContextOneBlockPerFileInOrder(t *testing.T) {
	storage, files := oneOfEachType()
	agg := NewAggregator(storage, stubRegistry(), 0)

	got, warnings := agg.BuildContext(context.Background(), files)

	want := "--- a.txt ---\nplain text\n\n" +
		"--- b doc ---\nexported doc\n\n" +
		"--- c.docx ---\ndocx:word\n\n" +
		"--- d.pptx ---\nslide one\nslide two:deck\n\n" +
		"--- e.pdf ---\npdf body\n\n" +
		"--- f.doc ---\n\n\n"
	assert.Equal(t, want, got)
	assert.Empty(t, warnings)
}

func TestBuildContextFetchPaths(t *testing.T) {
	storage, files := oneOfEachType()
	agg := NewAggregator(storage, stubRegistry(), 0)

	agg.BuildContext(context.Background(), files)

	assert.Equal(t, map[string]string{"2": entity.MimeTypePlainText}, storage.exportCalls)
	assert.Equal(t, map[string]int{"1": 1, "3": 1, "4": 1, "5": 1}, storage.downloadCalls)
}

func TestBuildContextLegacyWordIsEmptyNotError(t *testing.T) {
	files := []entity.FileDescriptor{{ID: "6", Name: "old.doc", MimeType: entity.MimeTypeLegacyWord}}
	storage := newFakeStorage(files...)
	storage.fail["6"] = errors.New("download would fail")

	docs, warnings := NewAggregator(storage, stubRegistry(), 0).ExtractAll(context.Background(), files)

	require.Len(t, docs, 1)
	assert.True(t, docs[0].OK)
	assert.Empty(t, docs[0].Text)
	assert.Empty(t, warnings)
}

func TestBuildContextFailureBecomesPlaceholder(t *testing.T) {
	files := []entity.FileDescriptor{
		{ID: "1", Name: "good.txt", MimeType: entity.MimeTypePlainText},
		{ID: "2", Name: "broken.pdf", MimeType: entity.MimeTypePDF},
		{ID: "3", Name: "missing.txt", MimeType: entity.MimeTypePlainText},
		{ID: "4", Name: "last.txt", MimeType: entity.MimeTypePlainText},
	}
	storage := newFakeStorage(files...)
	storage.content["1"] = []byte("one")
	storage.content["2"] = []byte("garbage")
	storage.fail["3"] = errors.New("network down")
	storage.content["4"] = []byte("four")

	got, warnings := NewAggregator(storage, stubRegistry(), 0).BuildContext(context.Background(), files)

	assert.Equal(t, 4, strings.Count(got, "--- "))
	assert.Equal(t,
		"--- good.txt ---\none\n\n"+
			"--- broken.pdf ---\n"+UnreadablePlaceholder+"\n\n"+
			"--- missing.txt ---\n"+UnreadablePlaceholder+"\n\n"+
			"--- last.txt ---\nfour\n\n",
		got,
	)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "broken.pdf")
	assert.Contains(t, warnings[1], "network down")
}

func TestBuildContextUnsupportedTypeBecomesPlaceholder(t *testing.T) {
	files := []entity.FileDescriptor{{ID: "1", Name: "sheet", MimeType: "application/vnd.google-apps.spreadsheet"}}
	storage := newFakeStorage(files...)

	docs, warnings := NewAggregator(storage, stubRegistry(), 0).ExtractAll(context.Background(), files)

	require.Len(t, docs, 1)
	assert.False(t, docs[0].OK)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], entity.ErrUnsupportedFormat.Error())
	assert.Empty(t, storage.downloadCalls)
}

func TestBuildContextRecoversExtractorPanic(t *testing.T) {
	r := stubRegistry()
	r.Register(extractor.Format{MimeType: entity.MimeTypeDOCX, Extract: func([]byte) (string, error) {
		panic("corrupt archive")
	}})
	files := []entity.FileDescriptor{
		{ID: "1", Name: "bad.docx", MimeType: entity.MimeTypeDOCX},
		{ID: "2", Name: "ok.txt", MimeType: entity.MimeTypePlainText},
	}
	storage := newFakeStorage(files...)
	storage.content["1"] = []byte("x")
	storage.content["2"] = []byte("fine")

	got, warnings := NewAggregator(storage, r, 0).BuildContext(context.Background(), files)

	assert.Equal(t, "--- bad.docx ---\n"+UnreadablePlaceholder+"\n\n--- ok.txt ---\nfine\n\n", got)
	assert.Len(t, warnings, 1)
}

func TestBuildContextCachesByModifiedTime(t *testing.T) {
	files := []entity.FileDescriptor{{ID: "1", Name: "a.txt", MimeType: entity.MimeTypePlainText, ModifiedTime: "2024-01-01T00:00:00Z"}}
	storage := newFakeStorage(files...)
	storage.content["1"] = []byte("cached")
	agg := NewAggregator(storage, stubRegistry(), time.Minute)

	first, _ := agg.BuildContext(context.Background(), files)
	second, _ := agg.BuildContext(context.Background(), files)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, storage.downloadCalls["1"])

	changed := []entity.FileDescriptor{{ID: "1", Name: "a.txt", MimeType: entity.MimeTypePlainText, ModifiedTime: "2024-02-01T00:00:00Z"}}
	agg.BuildContext(context.Background(), changed)
	assert.Equal(t, 2, storage.downloadCalls["1"])
}

func TestBuildContextWithoutCacheAlwaysFetches(t *testing.T) {
	files := []entity.FileDescriptor{{ID: "1", Name: "a.txt", MimeType: entity.MimeTypePlainText, ModifiedTime: "t"}}
	storage := newFakeStorage(files...)
	storage.content["1"] = []byte("x")
	agg := NewAggregator(storage, stubRegistry(), 0)

	agg.BuildContext(context.Background(), files)
	agg.BuildContext(context.Background(), files)
	assert.Equal(t, 2, storage.downloadCalls["1"])
}

func TestMergeContext(t *testing.T) {
	assert.Empty(t, MergeContext(nil))
	assert.Equal(t,
		"--- x ---\nbody\n\n--- y ---\n"+UnreadablePlaceholder+"\n\n",
		MergeContext([]entity.ExtractedDocument{
			{SourceName: "x", Text: "body", OK: true},
			{SourceName: "y", Text: "ignored", OK: false},
		}),
	)
}

func TestBuildPromptEmbedsQuestionAndContext(t *testing.T) {
	prompt := BuildPrompt("What is the vacation policy?", "--- a.txt ---\n25 days\n\n")
	assert.Contains(t, prompt, "Question: What is the vacation policy?")
	assert.Contains(t, prompt, "--- a.txt ---\n25 days\n\n")
	assert.Contains(t, prompt, "could not find it in the documents")
}
