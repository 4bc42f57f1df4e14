// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route registered after it.
//   - rayid: assigns each request a RayID, stored in the fiber locals for
//     logger.WithRayID and echoed in the X-Ray-ID response header.
package middleware
