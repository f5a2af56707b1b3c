// Package validator implements C7, the battery route validator: given a
// candidate path, a drone's battery state, and a set of registered
// charging vertices, it simulates the flight segment by segment and
// reports feasibility, critical segments, and required refuel stops.
//
// Grounded on domain/battery_route_validator.py's ValidadorRutasPorBateria
// in the original source: segment construction, the safety-margin check
// before each segment, nearest-station lookup within a search radius, and
// the critical-segment advisory marking all carry over; the Go version
// threads the drone's actual consumption rate through rather than the
// flat 5%-per-km placeholder the source used when no drone was supplied.
package validator
