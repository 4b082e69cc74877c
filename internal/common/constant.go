package common

// TokenStorageKey is the key under which the session token is kept in the
// local metadata store. It matches the storage key the web client uses.
const TokenStorageKey = "access_token"

// UsernameStorageKey remembers the last authenticated username so the login
// prompt can offer it as a default.
const UsernameStorageKey = "username"

// RequestIDHeader carries a client-generated id on every outgoing request
// so server logs can be correlated with a console session.
const RequestIDHeader = "X-Request-ID"
