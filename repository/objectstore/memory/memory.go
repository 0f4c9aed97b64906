package repository

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
)

// ObjectStoreRepo is an in-memory object store for single-process runs
// and tests. UploadErr/DeleteErr let tests simulate upstream failures.
type ObjectStoreRepo struct {
	UploadErr error
	DeleteErr error

	lock  sync.Mutex
	blobs map[string][]byte
}

var _ domain.ObjectStoreRepo = (*ObjectStoreRepo)(nil)

func CreateObjectStoreRepo() *ObjectStoreRepo {
	return &ObjectStoreRepo{
		blobs: make(map[string][]byte),
	}
}

func (o *ObjectStoreRepo) Upload(ctx context.Context, fileReader io.Reader, key string) error {
	if o.UploadErr != nil {
		return o.UploadErr
	}
	blob, err := io.ReadAll(fileReader)
	if err != nil {
		return errors.Wrap(err, "read file failed")
	}

	o.lock.Lock()
	defer o.lock.Unlock()
	o.blobs[key] = blob
	return nil
}

func (o *ObjectStoreRepo) Delete(ctx context.Context, key string) error {
	if o.DeleteErr != nil {
		return o.DeleteErr
	}

	o.lock.Lock()
	defer o.lock.Unlock()
	delete(o.blobs, key)
	return nil
}

func (o *ObjectStoreRepo) URL(key string) string {
	return "memory://" + key
}

func (o *ObjectStoreRepo) Exists(key string) bool {
	o.lock.Lock()
	defer o.lock.Unlock()
	_, ok := o.blobs[key]
	return ok
}

func (o *ObjectStoreRepo) Len() int {
	o.lock.Lock()
	defer o.lock.Unlock()
	return len(o.blobs)
}
