package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"instapost/internal/common"
)

type MediaStorage struct {
	gridFS *gridfs.Bucket
}

func NewMediaStorage(mongoClient *MongoClient) *MediaStorage {
	return &MediaStorage{
		gridFS: mongoClient.GridFS,
	}
}

type MediaFile struct {
	Key        string               `json:"key"` // GridFS ObjectID hex, also the delete handle
	Filename   string               `json:"filename"`
	Size       int64                `json:"size"`
	FileType   common.MediaFileType `json:"file_type"`
	UploadedBy string               `json:"uploaded_by"` // account handle
	UploadedAt time.Time            `json:"uploaded_at"`
}

// Upload streams content into GridFS and returns the stored file's key.
func (ms *MediaStorage) Upload(ctx context.Context, filename, mimeType, uploaderHandle string, content io.Reader) (*MediaFile, error) {
	fileType := common.DetectFileType(mimeType)

	metadata := bson.M{
		"file_type":   fileType.String(),
		"mime_type":   mimeType,
		"uploaded_by": uploaderHandle,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return nil, fmt.Errorf("file copy failed: %w", err)
	}

	return &MediaFile{
		Key:        stream.FileID.(primitive.ObjectID).Hex(),
		Filename:   filename,
		Size:       size,
		FileType:   fileType,
		UploadedBy: uploaderHandle,
		UploadedAt: time.Now(),
	}, nil
}

// Download opens a read stream for a stored file by key.
func (ms *MediaStorage) Download(ctx context.Context, key string) (io.Reader, *MediaFile, error) {
	objectID, err := primitive.ObjectIDFromHex(key)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file key: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	mediaFile := &MediaFile{
		Key:        key,
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		FileType:   common.MediaFileType(stringFromMeta(metadata, "file_type")),
		UploadedBy: stringFromMeta(metadata, "uploaded_by"),
		UploadedAt: fileInfo.UploadDate,
	}

	return stream, mediaFile, nil
}

func (ms *MediaStorage) Delete(ctx context.Context, key string) error {
	objectID, err := primitive.ObjectIDFromHex(key)
	if err != nil {
		return fmt.Errorf("invalid file key: %w", err)
	}
	return ms.gridFS.Delete(objectID)
}

func stringFromMeta(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
