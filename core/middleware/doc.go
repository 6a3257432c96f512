// Package middleware groups the Fiber middleware shared by every feature route.
//
//   - auth: rejects requests without the configured X-API-Key. An empty key
//     disables the check for local development.
//   - rayid: tags each request with an X-Ray-ID (reusing a valid incoming one)
//     so handler logs and monitor runs triggered over HTTP can be correlated.
//
// The start command registers rayid first, then the request logger, then auth.
// Swagger and /metrics are mounted before auth and stay public.
package middleware
