// Package driving defines the inbound port interfaces for cvmatch.
//
// Driving ports are implemented by core services and consumed by the
// CLI and HTTP adapters.
package driving
