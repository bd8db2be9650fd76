package hapi

// Control holds what every record tied to an asset shares: the remote asset
// id and a back-reference to the asset, which it does not own.
type Control struct {
	assetID int
	asset   *Asset
}

// Reset restores the defaults of an unbound control.
func (c *Control) Reset() {
	c.assetID = -1
	c.asset = nil
}

func (c *Control) AssetID() int {
	return c.assetID
}

func (c *Control) SetAssetID(id int) {
	c.assetID = id
}

func (c *Control) Asset() *Asset {
	return c.asset
}

func (c *Control) SetAsset(asset *Asset) {
	c.asset = asset
}
