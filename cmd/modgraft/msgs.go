package modgraft

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Graft managed mods into a game's plugin directory"
	MsgRootLong  = `modgraft manages a repository of game mods and grafts them into the game's
plugin directory through directory links (junctions on Windows, symlinks on
POSIX), so installing never copies files. It tracks the mod catalog locally
and flags the mods an update is available for.`
	MsgInstallShort   = "Link a mod from the repository into the plugin directory"
	MsgUninstallShort = "Remove a mod's link from the plugin directory"
	MsgRefreshShort   = "Ingest the downloaded manifest catalog into the local store"
	MsgListShort      = "List tracked mods with their link and update state"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagOverwrite = "Replace whatever occupies the link path"

	// Status messages
	MsgInstalled       = "Installed '%s' into %s\n"
	MsgUninstalled     = "Uninstalled '%s'\n"
	MsgRefreshedFormat = "Refreshed %d mods from %s\n"
	MsgNoModsTracked   = "No mods tracked. Run 'modgraft refresh' first."
	MsgDryRunInstall   = "DRY RUN: would link '%s' into %s\n"
	MsgDryRunUninstall = "DRY RUN: would remove the link for '%s'\n"
)
