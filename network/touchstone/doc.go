// Package touchstone reads two-port Touchstone files (.s2p), versions 1.0
// and 2.0, into s2p networks.
//
// Only scattering parameters are supported. Noise data is skipped. Angles
// in the file are always degrees; frequencies are read in the unit named
// by the option line and the resulting network keeps that display unit.
package touchstone
