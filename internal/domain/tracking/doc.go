// Package tracking defines the entities and contracts for following an
// application through its lifecycle: the application record itself, the
// status catalog, and the ordered status events that form its history.
package tracking
