// Package confloader loads layered configuration through koanf.
//
// Sources are merged in this order, later ones winning:
//
//  1. Values already present in the target struct (defaults)
//  2. A YAML configuration file
//  3. Environment variables with the HASHTAG_ prefix
//  4. Explicit overrides passed to LoadMap (command-line flags)
//
// Environment keys map to configuration keys by dropping the prefix,
// lowercasing, and turning the first underscore into a section dot, so
// HASHTAG_SCAN_MAX_LINE_BYTES becomes scan.max_line_bytes.
package confloader
