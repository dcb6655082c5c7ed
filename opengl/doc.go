// Package opengl is the OpenGL back-end adapter for artist.
//
// The adapter supplies capability components for the Classic profile: one
// compiled-and-linked program per pass, activated with glUseProgram. All
// driver traffic goes through the Functions table, a narrow mirror of the
// GL calls this layer needs; Native() returns the go-gl implementation and
// tests substitute a recording fake.
//
// Importing the package registers the Classic component set under API
// "opengl". A valid GL context must be current on the calling thread before
// any component actually runs.
package opengl
