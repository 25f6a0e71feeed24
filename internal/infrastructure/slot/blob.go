package slot

import (
	"context"
	"path/filepath"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// BlobSlot stores the serialized document under a single key of a blob
// bucket.
type BlobSlot struct {
	bucket *blob.Bucket
	key    string
	path   string // set for file-backed slots, empty otherwise
}

// NewFile opens a slot backed by a file bucket in dir. The document lands
// in a plain file named after the key, so sibling processes can watch it.
func NewFile(dir, key string) (*BlobSlot, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, err
	}
	return &BlobSlot{
		bucket: bucket,
		key:    key + ".json",
		path:   filepath.Join(dir, key+".json"),
	}, nil
}

// NewMemory opens an in-memory slot, used by tests.
func NewMemory(key string) *BlobSlot {
	return &BlobSlot{
		bucket: memblob.OpenBucket(nil),
		key:    key + ".json",
	}
}

func (s *BlobSlot) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *BlobSlot) Write(ctx context.Context, data []byte) error {
	return s.bucket.WriteAll(ctx, s.key, data, nil)
}

// FilePath returns the backing file for file slots, "" for memory slots.
func (s *BlobSlot) FilePath() string {
	return s.path
}

func (s *BlobSlot) Close() error {
	return s.bucket.Close()
}
