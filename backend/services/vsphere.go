// ABOUTME: vSphere importer drafting campus trees from vCenter inventory
// ABOUTME: Maps compute clusters to zones and ESXi hosts to halls via govmomi

package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/mo"
	"golang.org/x/sync/errgroup"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// hostMemoryPerRackGB sizes drafted halls: one rack per 256 GB of host memory
const hostMemoryPerRackGB = 256

// VSphereCredentials holds vCenter connection info
type VSphereCredentials struct {
	Host       string
	Username   string
	Password   string
	Datacenter string
	Insecure   bool
}

// VSphereClient wraps govmomi client for inventory discovery
type VSphereClient struct {
	creds      VSphereCredentials
	client     *govmomi.Client
	finder     *find.Finder
	datacenter *object.Datacenter
}

// NewVSphereClient creates a new vSphere client
func NewVSphereClient(creds VSphereCredentials) *VSphereClient {
	return &VSphereClient{
		creds: creds,
	}
}

// VSphereClientFromEnv creates a client from environment variables
func VSphereClientFromEnv(host, user, pass, datacenter string) *VSphereClient {
	return NewVSphereClient(VSphereCredentials{
		Host:       host,
		Username:   user,
		Password:   pass,
		Datacenter: datacenter,
		Insecure:   true,
	})
}

// Connect establishes connection to vCenter
func (v *VSphereClient) Connect(ctx context.Context) error {
	host := v.creds.Host
	if !strings.HasPrefix(host, "https://") && !strings.HasPrefix(host, "http://") {
		host = "https://" + host
	}

	u, err := url.Parse(host + "/sdk")
	if err != nil {
		return fmt.Errorf("invalid vCenter URL '%s': %w", v.creds.Host, err)
	}
	u.User = url.UserPassword(v.creds.Username, v.creds.Password)

	client, err := govmomi.NewClient(ctx, u, v.creds.Insecure)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "connection refused") {
			return fmt.Errorf("connection refused to vCenter at %s - verify the host is reachable", v.creds.Host)
		}
		if strings.Contains(errStr, "no such host") {
			return fmt.Errorf("cannot resolve vCenter hostname '%s' - verify DNS", v.creds.Host)
		}
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "Cannot complete login") {
			return fmt.Errorf("authentication failed - verify username and password")
		}
		if strings.Contains(errStr, "context deadline exceeded") || strings.Contains(errStr, "timeout") {
			return fmt.Errorf("connection timeout to vCenter at %s - check network connectivity", v.creds.Host)
		}
		if strings.Contains(errStr, "certificate") || strings.Contains(errStr, "x509") {
			return fmt.Errorf("SSL certificate error connecting to %s - try setting VSPHERE_INSECURE=true", v.creds.Host)
		}
		return fmt.Errorf("failed to connect to vCenter at %s: %w", v.creds.Host, err)
	}

	v.client = client
	v.finder = find.NewFinder(client.Client, true)

	dc, err := v.finder.Datacenter(ctx, v.creds.Datacenter)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("datacenter '%s' not found - verify the datacenter name", v.creds.Datacenter)
		}
		return fmt.Errorf("error accessing datacenter '%s': %w", v.creds.Datacenter, err)
	}
	v.datacenter = dc
	v.finder.SetDatacenter(dc)

	slog.Info("vSphere connected successfully")
	slog.Debug("vSphere connection details", "host", v.creds.Host, "datacenter", v.creds.Datacenter)
	return nil
}

// Disconnect closes the vCenter connection
func (v *VSphereClient) Disconnect(ctx context.Context) error {
	if v.client != nil {
		return v.client.Logout(ctx)
	}
	return nil
}

// IsConnected returns true if client has an active connection
func (v *VSphereClient) IsConnected() bool {
	return v.client != nil && v.client.Valid()
}

// ClusterInventory holds one compute cluster's host inventory
type ClusterInventory struct {
	Name          string
	Hosts         []HostInventory
	TotalMemoryMB int64
	TotalCPUCores int32
}

// HostInventory holds ESXi host data
type HostInventory struct {
	Name        string
	MemoryMB    int64
	CPUCores    int32
	PowerState  string
	Maintenance bool
}

// GetClusters retrieves all compute clusters in the datacenter, collecting
// per-cluster host inventories concurrently.
func (v *VSphereClient) GetClusters(ctx context.Context) ([]ClusterInventory, error) {
	clusters, err := v.finder.ClusterComputeResourceList(ctx, "*")
	if err != nil {
		return nil, fmt.Errorf("listing clusters: %w", err)
	}

	result := make([]ClusterInventory, len(clusters))
	g, gctx := errgroup.WithContext(ctx)
	for i, cluster := range clusters {
		g.Go(func() error {
			info, err := v.getClusterInventory(gctx, cluster)
			if err != nil {
				return fmt.Errorf("getting cluster %s inventory: %w", cluster.Name(), err)
			}
			result[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// getClusterInventory retrieves one cluster's hosts
func (v *VSphereClient) getClusterInventory(ctx context.Context, cluster *object.ClusterComputeResource) (ClusterInventory, error) {
	info := ClusterInventory{
		Name: cluster.Name(),
	}

	var clusterMo mo.ClusterComputeResource
	err := cluster.Properties(ctx, cluster.Reference(), []string{"host"}, &clusterMo)
	if err != nil {
		return info, fmt.Errorf("getting cluster properties: %w", err)
	}

	for _, hostRef := range clusterMo.Host {
		host := object.NewHostSystem(v.client.Client, hostRef)
		hostInfo, err := v.getHostInventory(ctx, host)
		if err != nil {
			return info, fmt.Errorf("getting host info: %w", err)
		}
		info.Hosts = append(info.Hosts, hostInfo)
		info.TotalMemoryMB += hostInfo.MemoryMB
		info.TotalCPUCores += hostInfo.CPUCores
	}

	return info, nil
}

// getHostInventory retrieves host hardware summary
func (v *VSphereClient) getHostInventory(ctx context.Context, host *object.HostSystem) (HostInventory, error) {
	var hostMo mo.HostSystem
	err := host.Properties(ctx, host.Reference(), []string{"summary", "runtime"}, &hostMo)
	if err != nil {
		return HostInventory{}, fmt.Errorf("getting host properties: %w", err)
	}

	return HostInventory{
		Name:        host.Name(),
		MemoryMB:    hostMo.Summary.Hardware.MemorySize / (1024 * 1024),
		CPUCores:    int32(hostMo.Summary.Hardware.NumCpuThreads),
		PowerState:  string(hostMo.Runtime.PowerState),
		Maintenance: hostMo.Runtime.InMaintenanceMode,
	}, nil
}

// GetClusterNames returns just the cluster names (useful for dropdowns)
func (v *VSphereClient) GetClusterNames(ctx context.Context) ([]string, error) {
	clusters, err := v.finder.ClusterComputeResourceList(ctx, "*")
	if err != nil {
		return nil, fmt.Errorf("listing clusters: %w", err)
	}

	names := make([]string, len(clusters))
	for i, c := range clusters {
		names[i] = c.Name()
	}
	return names, nil
}

// DraftCampus maps the datacenter inventory onto a campus draft: one zone per
// compute cluster, one hall per powered-on host outside maintenance, hall
// rack counts sized by host memory, profiles taken from the fallback
// parameters. The draft is not reconciled.
func (v *VSphereClient) DraftCampus(ctx context.Context, fallback models.Params) (*models.Campus, error) {
	clusters, err := v.GetClusters(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting clusters: %w", err)
	}

	profile := models.RackProfile{
		RackDensityKW: fallback.RackDensityKW,
		Redundancy:    fallback.Redundancy,
		CoolingType:   fallback.CoolingType,
		Containment:   fallback.Containment,
	}

	campus := &models.Campus{
		ID:              uuid.NewString(),
		Name:            v.creds.Datacenter,
		Notes:           fmt.Sprintf("Imported from vCenter %s", v.creds.Host),
		TargetPUE:       fallback.TargetPUE,
		WhitespaceRatio: fallback.WhitespaceRatio,
	}

	for _, c := range clusters {
		zone := &models.Zone{
			ID:           uuid.NewString(),
			Name:         c.Name,
			HallDefaults: profile,
		}

		largest := 0
		total := 0
		for _, h := range c.Hosts {
			if h.PowerState != "poweredOn" || h.Maintenance {
				continue
			}
			racks := hostRackCount(h.MemoryMB)
			if racks > largest {
				largest = racks
			}
			total += racks

			zone.Halls = append(zone.Halls, &models.Hall{
				ID:        uuid.NewString(),
				Name:      h.Name,
				Notes:     fmt.Sprintf("%d cores, %d GB memory", h.CPUCores, h.MemoryMB/1024),
				RackCount: racks,
				Profile:   profile,
			})
		}
		if len(zone.Halls) == 0 {
			continue
		}

		zone.RackRules = models.RackRules{
			MinRackCount:     1,
			MaxRackCount:     2 * largest,
			DefaultRackCount: total / len(zone.Halls),
			Step:             1,
		}
		campus.Zones = append(campus.Zones, zone)
	}

	if len(campus.Zones) == 0 {
		return nil, fmt.Errorf("no usable clusters found in datacenter '%s'", v.creds.Datacenter)
	}

	slog.Info("vSphere campus draft complete", "zones", len(campus.Zones), "halls", campus.TotalHalls())
	return campus, nil
}

// hostRackCount sizes a hall from host memory: one rack per 256 GB, minimum 1
func hostRackCount(memoryMB int64) int {
	racks := int(math.Round(float64(memoryMB) / 1024.0 / hostMemoryPerRackGB))
	if racks < 1 {
		racks = 1
	}
	return racks
}
