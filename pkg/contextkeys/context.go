package contextkeys

// Custom key type avoids collisions with other context users.
type contextKey string

// DBContextKey is where the per-request *gorm.DB handle lives.
const DBContextKey = contextKey("db")
