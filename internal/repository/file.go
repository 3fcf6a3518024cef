package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"permission-bot/internal/repository/model"
)

const settingsIndent = "    "

// fileRepository persists the settings document as a single human-readable
// JSON file. Every operation reads the whole document and every mutation
// rewrites it in full. The mutex keeps each load-mutate-save sequence a
// single critical section within the process; nothing guards against other
// processes writing the same file.
type fileRepository struct {
	logger *zap.SugaredLogger
	path   string

	mu sync.Mutex
}

func NewFileRepository(logger *zap.SugaredLogger, path string) Repository {
	return &fileRepository{
		logger: logger,
		path:   path,
	}
}

func (f *fileRepository) load() (model.Document, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.Document{}, nil
	}
	if err != nil {
		return nil, err
	}
	// An empty file is an empty document, not a decode failure.
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Document{}, nil
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode settings document: %w", err)
	}
	// A literal "null" decodes to a nil map; treat it like an empty document
	// so mutations do not write into a nil map.
	if doc == nil {
		doc = model.Document{}
	}
	return doc, nil
}

func (f *fileRepository) save(doc model.Document) error {
	data, err := json.MarshalIndent(doc, "", settingsIndent)
	if err != nil {
		return fmt.Errorf("failed to encode settings document: %w", err)
	}
	return os.WriteFile(f.path, data, 0644)
}

func (f *fileRepository) GetUserPermissions(_ context.Context, threadID string, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	permissions, ok := doc.UserPermissions(threadID, userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	return append([]string(nil), permissions...), nil
}

func (f *fileRepository) AddPermissionsToUser(_ context.Context, threadID string, userID string, commands []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}

	doc.Grant(threadID, userID, commands)
	return f.save(doc)
}

func (f *fileRepository) RemovePermissionsFromUser(_ context.Context, threadID string, userID string, commands []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}

	found, changed := doc.Revoke(threadID, userID, commands)
	if !found {
		return ErrUserNotFound
	}
	if !changed {
		return nil
	}
	return f.save(doc)
}
