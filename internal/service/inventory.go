package service

import (
	"strings"

	"cardshop/internal/models"
)

// PickAvailable returns the first unsold file in collection order
// (first uploaded, first served). ok is false when stock is empty.
func (s *Service) PickAvailable() (models.File, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pickAvailable()
}

func (s *Service) pickAvailable() (models.File, bool, error) {
	files, err := s.store.LoadFiles()
	if err != nil {
		return models.File{}, false, err
	}
	for _, f := range files {
		if !f.IsSold {
			return f, true, nil
		}
	}
	return models.File{}, false, nil
}

// Allocate marks the file sold and binds it to the order. ErrNotFound means
// the picked file vanished between pick and allocate, which signals a logic
// error upstream — callers must check.
func (s *Service) Allocate(fileID, orderID string) (models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocate(fileID, orderID)
}

func (s *Service) allocate(fileID, orderID string) (models.File, error) {
	files, err := s.store.LoadFiles()
	if err != nil {
		return models.File{}, err
	}
	for i := range files {
		if files[i].ID != fileID {
			continue
		}
		files[i].IsSold = true
		files[i].OrderID = &orderID
		if err := s.store.ReplaceFiles(files); err != nil {
			return models.File{}, err
		}
		return files[i], nil
	}
	return models.File{}, ErrNotFound
}

// BulkAdd appends one file per non-blank input line. Lines are trimmed and
// blank lines dropped before any file is created.
func (s *Service) BulkAdd(lines []string) ([]models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.store.LoadFiles()
	if err != nil {
		return nil, err
	}

	added := make([]models.File, 0, len(lines))
	for _, line := range lines {
		content := strings.TrimSpace(line)
		if content == "" {
			continue
		}
		added = append(added, models.File{
			ID:        s.newID(),
			Content:   content,
			IsSold:    false,
			OrderID:   nil,
			CreatedAt: s.now(),
		})
	}
	if len(added) == 0 {
		return []models.File{}, nil
	}

	files = append(files, added...)
	if err := s.store.ReplaceFiles(files); err != nil {
		return nil, err
	}
	return added, nil
}

func (s *Service) ListFiles() ([]models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadFiles()
}
