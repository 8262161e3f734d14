package model

// User represents a credential record as stored in the `user_credentials`
// table.  Each field corresponds to a column in the database.  The json tags
// are omitted here because these structs are used internally by the
// repository layer; handlers define separate response types with appropriate
// JSON tags.  The plaintext password never appears on this struct; only the
// bcrypt hash is ever read from or written to storage.
//
// Fields:
//  ID           – server‑generated UUID, immutable once assigned.
//  Username     – unique, case‑sensitive lookup key.
//  PasswordHash – bcrypt hash of the password.
type User struct {
    ID           string // user_credentials.id
    Username     string // user_credentials.user_name
    PasswordHash string // user_credentials.password
}
