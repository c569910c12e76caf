package contextkeys

// contextKey is unexported to avoid collisions with other packages.
type contextKey string

// DBContextKey is where the per-request *gorm.DB handle lives. Tests put a
// transaction under the same key to isolate themselves.
const DBContextKey = contextKey("db")
