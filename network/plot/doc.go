// Package plot renders formatted S-parameter traces against their frequency
// axis as a two-row chart: magnitude over phase for DB and MA, real over
// imaginary for RI.
package plot
