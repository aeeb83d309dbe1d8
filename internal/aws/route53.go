package aws

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/rs/zerolog/log"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectRoute53Records walks every hosted zone and flattens its record sets.
// Route 53 is global, so the region argument is ignored.
func (c *Collector) collectRoute53Records(ctx context.Context, _ string) ([]inventory.Row, error) {
	var rows []inventory.Row
	var marker *string

	for {
		out, err := c.route53Client.ListHostedZones(ctx, &route53.ListHostedZonesInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("list hosted zones: %w", err)
		}

		for _, zone := range out.HostedZones {
			zoneRows, err := c.collectZoneRecords(ctx, zone)
			if err != nil {
				log.Warn().Err(err).Str("zone", awssdk.ToString(zone.Name)).
					Msg("listing record sets failed, skipping zone")
				continue
			}
			rows = append(rows, zoneRows...)
		}

		if !out.IsTruncated {
			break
		}
		marker = out.NextMarker
	}

	return rows, nil
}

// collectZoneRecords pages through one zone's record sets. The continuation
// cursor is the name+type pair, not a single opaque token.
func (c *Collector) collectZoneRecords(ctx context.Context, zone r53types.HostedZone) ([]inventory.Row, error) {
	zoneID := strings.TrimPrefix(awssdk.ToString(zone.Id), "/hostedzone/")
	zoneName := awssdk.ToString(zone.Name)

	var rows []inventory.Row
	input := &route53.ListResourceRecordSetsInput{HostedZoneId: awssdk.String(zoneID)}

	for {
		out, err := c.route53Client.ListResourceRecordSets(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("list record sets for zone %s: %w", zoneID, err)
		}

		for _, record := range out.ResourceRecordSets {
			rows = append(rows, inventory.Row{
				c.accountID,
				zoneName,
				awssdk.ToString(record.Name),
				string(record.Type),
				recordValue(record),
			})
		}

		if !out.IsTruncated {
			break
		}
		input.StartRecordName = out.NextRecordName
		input.StartRecordType = out.NextRecordType
	}

	return rows, nil
}

// recordValue flattens a record set's value: the joined resource records,
// falling back to the alias target, then to the sentinel.
func recordValue(record r53types.ResourceRecordSet) string {
	if len(record.ResourceRecords) > 0 {
		values := make([]string, 0, len(record.ResourceRecords))
		for _, rr := range record.ResourceRecords {
			values = append(values, awssdk.ToString(rr.Value))
		}
		return strings.Join(values, ", ")
	}
	if record.AliasTarget != nil {
		return awssdk.ToString(record.AliasTarget.DNSName)
	}
	return sentinelNA
}
