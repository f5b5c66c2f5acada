// Package entity tracks the actors of a run: the main button, the four upgrade
// stations and the producers spawned by purchases. Nothing is ever removed.
package entity

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

var (
	ErrSingletonExists = errors.New("singleton already spawned")
	ErrNotSingleton    = errors.New("kind is not a singleton")
	ErrNotSpawned      = errors.New("singleton not spawned")
)

type Actor struct {
	Kind     Kind
	Position rl.Vector2
}

// ProducerActor pays out on its own timer. It has no position and is never
// hit-tested.
type ProducerActor struct {
	ID    string
	Timer float64
}

type Registry struct {
	singletons map[Kind]*Actor
	producers  []*ProducerActor
}

func NewRegistry() *Registry {
	return &Registry{
		singletons: make(map[Kind]*Actor),
		producers:  make([]*ProducerActor, 0),
	}
}

func (r *Registry) SpawnSingleton(kind Kind, pos rl.Vector2) error {
	if !kind.IsSingleton() {
		return fmt.Errorf("spawn %s: %w", kind, ErrNotSingleton)
	}
	if _, exists := r.singletons[kind]; exists {
		return fmt.Errorf("spawn %s: %w", kind, ErrSingletonExists)
	}
	r.singletons[kind] = &Actor{Kind: kind, Position: pos}
	return nil
}

func (r *Registry) SpawnProducer() *ProducerActor {
	p := &ProducerActor{ID: uuid.NewString(), Timer: 0}
	r.producers = append(r.producers, p)
	return p
}

// PositionsOf returns a copy of the positions registered for kind. Producers
// have none.
func (r *Registry) PositionsOf(kind Kind) []rl.Vector2 {
	actor, ok := r.singletons[kind]
	if !ok {
		return nil
	}
	return []rl.Vector2{actor.Position}
}

func (r *Registry) Reposition(kind Kind, pos rl.Vector2) error {
	actor, ok := r.singletons[kind]
	if !ok {
		return fmt.Errorf("reposition %s: %w", kind, ErrNotSpawned)
	}
	actor.Position = pos
	return nil
}

func (r *Registry) Producers() []*ProducerActor {
	return r.producers
}

func (r *Registry) ProducerCount() int {
	return len(r.producers)
}
