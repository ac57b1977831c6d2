// Package utils provides small helper functions shared across the application:
// safe type conversion, file existence checks, content type classification,
// and slice transformation.
package utils
