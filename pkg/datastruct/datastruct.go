// Package datastruct holds the containers rangekit can use as sequence sources.
package datastruct
