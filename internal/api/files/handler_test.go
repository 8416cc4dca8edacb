package files

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	folderID string
	files    []entity.FileDescriptor
	err      error
}

func (f *fakeUsecase) ListRoot(ctx context.Context) ([]entity.FileDescriptor, error) {
	f.folderID = "root"
	return f.files, f.err
}

func (f *fakeUsecase) ListFolder(ctx context.Context, folderID string) ([]entity.FileDescriptor, error) {
	f.folderID = folderID
	return f.files, f.err
}

func serve(uc FilesUsecase, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListRootPreservesOrder(t *testing.T) {
	uc := &fakeUsecase{files: []entity.FileDescriptor{
		{ID: "f1", Name: "Archive", MimeType: entity.MimeTypeFolder},
		{ID: "d2", Name: "b.txt", MimeType: entity.MimeTypePlainText},
		{ID: "d1", Name: "a.pdf", MimeType: entity.MimeTypePDF},
	}}

	rec := serve(uc, "/api/files")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "root", uc.folderID)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []entity.FileDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"f1", "d2", "d1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestListRootWireFormat(t *testing.T) {
	uc := &fakeUsecase{files: []entity.FileDescriptor{
		{ID: "d1", Name: "a.txt", MimeType: entity.MimeTypePlainText, ModifiedTime: "2024-01-01T00:00:00Z"},
	}}

	rec := serve(uc, "/api/files")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"d1","name":"a.txt","mimeType":"text/plain"}]`, rec.Body.String())
}

func TestListFolderEmptyIsArray(t *testing.T) {
	uc := &fakeUsecase{}

	rec := serve(uc, "/api/files/abc")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", uc.folderID)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListFolderStorageError(t *testing.T) {
	uc := &fakeUsecase{err: fmt.Errorf("list folder: %w", entity.ErrStorageUnavailable)}

	rec := serve(uc, "/api/files/abc")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to fetch files"}`, rec.Body.String())
}

func TestListFolderMissingID(t *testing.T) {
	uc := &fakeUsecase{err: fmt.Errorf("%w: folderId", entity.ErrMissingField)}

	rec := serve(uc, "/api/files/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
