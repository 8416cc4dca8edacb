package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFiles struct {
	listed string
	files  []entity.FileDescriptor
	err    error
}

func (f *fakeFiles) ListRoot(ctx context.Context) ([]entity.FileDescriptor, error) {
	f.listed = "root"
	return f.files, f.err
}

func (f *fakeFiles) ListFolder(ctx context.Context, folderID string) ([]entity.FileDescriptor, error) {
	f.listed = folderID
	return f.files, f.err
}

type fakeConsult struct {
	got *entity.ConsultRequest
	res *entity.ConsultResult
	err error
}

func (f *fakeConsult) Consult(ctx context.Context, req *entity.ConsultRequest) (*entity.ConsultResult, error) {
	f.got = req
	return f.res, f.err
}

func run(t *testing.T, b *Backend, args ...string) (string, string, error) {
	t.Helper()

	closed := false
	b.Close = func() error {
		closed = true
		return nil
	}

	var gotEnv string
	cmd := NewRootCommand(func(environment string, verbose bool) (*Backend, error) {
		gotEnv = environment
		return b, nil
	})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if gotEnv != "" {
		assert.True(t, closed, "backend must be closed after the command")
	}
	return stdout.String(), stderr.String(), err
}

func TestListRoot(t *testing.T) {
	files := &fakeFiles{files: []entity.FileDescriptor{
		{ID: "f1", Name: "Handbook", MimeType: entity.MimeTypeFolder},
		{ID: "d1", Name: "notes.txt", MimeType: entity.MimeTypePlainText},
	}}

	out, _, err := run(t, &Backend{Files: files}, "ls")
	require.NoError(t, err)

	assert.Equal(t, "root", files.listed)
	assert.Contains(t, out, "2 item(s)")
	assert.Contains(t, out, "Handbook/")
	assert.Contains(t, out, "notes.txt")
	assert.Less(t, bytes.Index([]byte(out), []byte("Handbook")), bytes.Index([]byte(out), []byte("notes.txt")))
}

func TestListFolderEmpty(t *testing.T) {
	files := &fakeFiles{}

	out, _, err := run(t, &Backend{Files: files}, "ls", "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", files.listed)
	assert.Contains(t, out, "(empty)")
}

func TestListError(t *testing.T) {
	files := &fakeFiles{err: entity.ErrStorageUnavailable}

	_, _, err := run(t, &Backend{Files: files}, "ls")
	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)
}

func TestAsk(t *testing.T) {
	consult := &fakeConsult{res: &entity.ConsultResult{
		Answer:   "25 days.",
		Warnings: []string{"scan.pdf: extraction failed"},
	}}

	out, errOut, err := run(t, &Backend{Consult: consult}, "ask", "-f", "F1", "-q", "How many days?", "--env", "prod")
	require.NoError(t, err)

	require.NotNil(t, consult.got)
	assert.Equal(t, "F1", consult.got.FolderID)
	assert.Equal(t, "How many days?", consult.got.Question)
	assert.Contains(t, out, "25 days.")
	assert.Contains(t, errOut, "scan.pdf")
}

func TestAskRequiresFlags(t *testing.T) {
	consult := &fakeConsult{}

	_, _, err := run(t, &Backend{Consult: consult}, "ask", "-f", "F1")
	assert.Error(t, err)
	assert.Nil(t, consult.got)
}

func TestAskPropagatesModelError(t *testing.T) {
	consult := &fakeConsult{err: errors.New("model down")}

	_, _, err := run(t, &Backend{Consult: consult}, "ask", "-f", "F1", "-q", "q")
	assert.ErrorContains(t, err, "model down")
}

func TestLoaderError(t *testing.T) {
	cmd := NewRootCommand(func(environment string, verbose bool) (*Backend, error) {
		return nil, errors.New("bad config")
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"ls"})

	assert.ErrorContains(t, cmd.Execute(), "bad config")
}

func TestAskWritesMarkdownReport(t *testing.T) {
	consult := &fakeConsult{res: &entity.ConsultResult{Answer: "25 days."}}
	path := filepath.Join(t.TempDir(), "report.md")

	_, _, err := run(t, &Backend{Consult: consult}, "ask", "-f", "F1", "-q", "How many days?", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "How many days?")
	assert.Contains(t, string(data), "25 days.")
}

func TestAskRejectsUnknownReportFormat(t *testing.T) {
	consult := &fakeConsult{}

	_, _, err := run(t, &Backend{Consult: consult}, "ask", "-f", "F1", "-q", "q", "-o", "report.txt")
	assert.ErrorContains(t, err, "unsupported report format")
	assert.Nil(t, consult.got)
}
