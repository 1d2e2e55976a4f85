// Package engine is the composition root. It assembles agents from
// configuration, runs scripted scenarios against them, and fans out events so
// frontends can render activity without the core printing anything.
package engine
