package roomview

import (
	"fmt"

	"github.com/qmuntal/gltf"
)

// RoomAsset is the node inventory of a glTF room model - which named nodes and meshes it
// contains, without any of its geometry. Hosts that reference scene nodes by name (to focus a
// wall, swap a material) should preflight those names against the inventory before the render
// layer starts, instead of discovering a missing node through a failed lookup mid-session.
type RoomAsset struct {
	Path   string
	Nodes  []string // names of all nodes in the document, in document order
	Meshes []string // names of all meshes in the document, in document order
	Scenes int      // number of scenes in the document; a renderable model has at least one
}

// OpenRoomAsset reads the node inventory of the glTF file at the given path. Only the document
// structure is read; geometry stays with the rendering runtime that actually loads the model.
func OpenRoomAsset(path string) (*RoomAsset, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening room asset %s: %w", path, err)
	}

	asset := &RoomAsset{Path: path, Scenes: len(doc.Scenes)}

	for _, node := range doc.Nodes {
		asset.Nodes = append(asset.Nodes, node.Name)
	}
	for _, mesh := range doc.Meshes {
		asset.Meshes = append(asset.Meshes, mesh.Name)
	}

	return asset, nil

}

// HasNode returns true if the asset contains a node with the given name.
func (asset *RoomAsset) HasNode(name string) bool {
	for _, n := range asset.Nodes {
		if n == name {
			return true
		}
	}
	return false
}

// VerifyNodes checks that every given node name exists in the asset, returning an error naming
// the first one that doesn't.
func (asset *RoomAsset) VerifyNodes(names ...string) error {
	for _, name := range names {
		if !asset.HasNode(name) {
			return fmt.Errorf("room asset %s has no node named %q", asset.Path, name)
		}
	}
	return nil
}
