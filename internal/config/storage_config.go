package config

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
)

type StorageBackend string

const (
	StorageBackendFile   StorageBackend = "file"
	StorageBackendRedis  StorageBackend = "redis"
	StorageBackendMemory StorageBackend = "memory"
)

type StorageConfig interface {
	GetStorageBackend() StorageBackend
	GetDataFolder() string
	GetSessionFile() string
	GetSessionEncryptionKey() ([]byte, error)
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetRedisKeyPrefix() string
}

type Storage struct {
	Backend       StorageBackend `env:"SESSION_BACKEND" envDefault:"file"`
	DataFolder    string         `env:"DATA_FOLDER" envDefault:"./data"`
	EncryptionKey string         `env:"SESSION_ENCRYPTION_KEY"`
	Redis         RedisSettings  `envPrefix:"REDIS_"`
}

type RedisSettings struct {
	Addr      string `env:"ADDR" envDefault:"localhost:6379"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"storefront:session:"`
}

var _ StorageConfig = Storage{}

func (s *Storage) sanitize() {
	switch StorageBackend(strings.ToLower(string(s.Backend))) {
	case StorageBackendRedis:
		s.Backend = StorageBackendRedis
	case StorageBackendMemory:
		s.Backend = StorageBackendMemory
	default:
		s.Backend = StorageBackendFile
	}
	if s.DataFolder == "" {
		s.DataFolder = "./data"
	}
}

func (s Storage) GetStorageBackend() StorageBackend {
	return s.Backend
}

func (s Storage) GetDataFolder() string {
	return s.DataFolder
}

func (s Storage) GetSessionFile() string {
	return filepath.Join(s.DataFolder, "session.json")
}

// GetSessionEncryptionKey decodes the hex key. A nil key with a nil error
// means sealing is disabled.
func (s Storage) GetSessionEncryptionKey() ([]byte, error) {
	if s.EncryptionKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(s.EncryptionKey)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidKey, "SESSION_ENCRYPTION_KEY is not hex")
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: SESSION_ENCRYPTION_KEY must be 32 bytes, got %d", apperrors.ErrInvalidKey, len(key))
	}
	return key, nil
}

func (s Storage) GetRedisAddr() string {
	return s.Redis.Addr
}

func (s Storage) GetRedisPassword() string {
	return s.Redis.Password
}

func (s Storage) GetRedisDB() int {
	return s.Redis.DB
}

func (s Storage) GetRedisKeyPrefix() string {
	return s.Redis.KeyPrefix
}
