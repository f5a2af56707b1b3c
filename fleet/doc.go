// Package fleet models the operational state of drones and charging
// stations: battery bookkeeping, legal state transitions, and the
// start/finish-charge handshake between a drone and a station. Grounded
// on domain/drone.py's Dron/EstadoDron and domain/charging_station.py's
// EstacionRecarga/EstadoEstacion/TipoRecarga, translated into explicit
// Go state machines with error returns instead of silent boolean
// failures.
package fleet
