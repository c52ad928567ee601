// internal/app/system/csvutil/limits.go
package csvutil

// MaxRows caps how many rows a single manifest may carry.
const MaxRows = 20000
