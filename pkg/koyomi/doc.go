// Package koyomi maps the Sun's apparent ecliptic longitude to the
// traditional 24 sekki (solar terms) and 72 kō (micro-seasons) of the
// Japanese solar calendar. The table of terms is embedded reference data;
// resolution is a pure function of (longitude, table).
package koyomi
