package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

const (
	MimeOctetStream = "application/octet-stream"
)

const (
	DefaultLoginNext = "/profile"
	LoginPath        = "/profile/login"
)

const MaxUploadSize = 32 << 20
