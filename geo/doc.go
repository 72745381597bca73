// Package geo provides the geographic boundary adapters for the locator:
// spherical Web Mercator conversion between geodetic (EPSG:4326) and planar
// projected (EPSG:3857) coordinates, and loading of road-segment geometry
// from a GeoJSON file.
//
// Everything inside the solver core works in projected planar meters; geodetic
// coordinates exist only at the input and output boundaries.
package geo
