package clusterinfo

import (
	"fmt"

	"github.com/blang/semver"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/http_api"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/lg"
)

type ClusterInfo struct {
	log    lg.AppLogFunc
	client *http_api.Client
}

func New(log lg.AppLogFunc, client *http_api.Client) *ClusterInfo {
	return &ClusterInfo{
		log:    log,
		client: client,
	}
}

func (c *ClusterInfo) logf(f string, args ...interface{}) {
	if c.log != nil {
		c.log(lg.INFO, f, args...)
	}
}

// GetVersion returns a semver.Version object by querying a node's /info
func (c *ClusterInfo) GetVersion(addr string) (semver.Version, error) {
	endpoint := fmt.Sprintf("http://%s/info", addr)
	c.logf("version probe %s", endpoint)
	var resp struct {
		Version string `json:"version"`
	}
	_, err := c.client.GETV1(endpoint, &resp)
	if err != nil {
		return semver.Version{}, err
	}
	if resp.Version == "" {
		resp.Version = "unknown"
	}
	return semver.Parse(resp.Version)
}
