// Package project implements the Project aggregate: a three-level tree of
// Project, Subproject and Stage whose statuses and progress are derived from
// the leaves upward.
//
// Every mutation enters through *Project so the root can recompute derived
// state after the change. Subproject and Stage expose read accessors only.
// Persistence adapters convert the tree to and from ProjectState, a plain
// data snapshot that carries no behavior.
package project
