package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-deadwood/internal/commands"
	"github.com/pixil98/go-deadwood/internal/game"
	"github.com/pixil98/go-deadwood/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Rooms    AssetConfig[*game.Room]          `json:"rooms"`
	Scenes   AssetConfig[*game.RoleCard]      `json:"scenes"`
	Upgrades AssetConfig[*game.UpgradePrices] `json:"upgrades"`
	Commands AssetConfig[*commands.Command]   `json:"commands"`
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	scenes, err := c.Scenes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating scene store: %w", err)
	}
	upgrades, err := c.Upgrades.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating upgrade store: %w", err)
	}

	dict := &game.Dictionary{
		Rooms:    rooms,
		Scenes:   scenes,
		Upgrades: upgrades,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Scenes.Validate("scenes"))
	el.Add(c.Upgrades.Validate("upgrades"))
	el.Add(c.Commands.Validate("commands"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
