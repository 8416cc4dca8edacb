package consult

import (
	"context"
	"errors"
	"sync"

	"github.com/futig/drive-consult/internal/entity"
)

type fakeStorage struct {
	mu sync.Mutex

	files   []entity.FileDescriptor
	listErr error
	content map[string][]byte
	fail    map[string]error

	listCalls     int
	listedMimes   []string
	exportCalls   map[string]string
	downloadCalls map[string]int
}

func newFakeStorage(files ...entity.FileDescriptor) *fakeStorage {
	return &fakeStorage{
		files:         files,
		content:       map[string][]byte{},
		fail:          map[string]error{},
		exportCalls:   map[string]string{},
		downloadCalls: map[string]int{},
	}
}

func (s *fakeStorage) ListChildren(_ context.Context, _ string, mimeTypes []string) ([]entity.FileDescriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	s.listedMimes = mimeTypes
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.files, nil
}

func (s *fakeStorage) Export(_ context.Context, fileID, mimeType string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exportCalls[fileID] = mimeType
	return s.get(fileID)
}

func (s *fakeStorage) Download(_ context.Context, fileID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadCalls[fileID]++
	return s.get(fileID)
}

func (s *fakeStorage) get(fileID string) ([]byte, error) {
	if err := s.fail[fileID]; err != nil {
		return nil, err
	}
	data, ok := s.content[fileID]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

type fakeModel struct {
	answer  string
	err     error
	calls   int
	prompts []string
}

func (m *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}
