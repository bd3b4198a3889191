package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"irc-bridge/domain"
	"irc-bridge/infrastructure/storage"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type serverRow struct {
	Server   domain.ServerConfig
	Channels []domain.ChannelConfig
	LastSeq  uint64
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderServers(out io.Writer, rows []serverRow) {
	table := newTable(out, "User", "Network", "Address", "Nick", "TLS", "Enabled", "Channels", "Last seq")
	for _, r := range rows {
		channels := lo.Map(r.Channels, func(c domain.ChannelConfig, _ int) string { return c.Name })
		table.Append([]string{
			string(r.Server.User),
			string(r.Server.Network()),
			r.Server.Address(),
			r.Server.Nickname,
			strconv.FormatBool(r.Server.TLS),
			strconv.FormatBool(r.Server.Enabled),
			strings.Join(channels, " "),
			strconv.FormatUint(r.LastSeq, 10),
		})
	}
	table.Render()
}

func renderHits(out io.Writer, hits []storage.ArchivedMessage) {
	if len(hits) == 0 {
		fmt.Fprintln(out, "no match")
		return
	}
	table := newTable(out, "Seq", "At", "User", "Network", "Kind", "Target", "From", "Lang", "Text")
	for _, h := range hits {
		table.Append([]string{
			strconv.FormatUint(h.Sequence, 10),
			h.At.Format("2006-01-02 15:04:05"),
			string(h.User),
			string(h.Network),
			string(h.Kind),
			h.Target,
			h.Actor,
			h.Lang,
			h.Text,
		})
	}
	table.Render()
}
