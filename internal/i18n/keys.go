package i18n

// Message IDs
const (
	KeyAppTitle      = "app_title"
	KeyBackHint      = "back_hint"
	KeyLoginHint     = "login_hint"
	KeySignedInAs    = "signed_in_as"
	KeyLoggedOut     = "logged_out"
	KeyNotLoggedIn   = "not_logged_in"
	KeyEmpty         = "empty"
	KeySaved         = "saved"
	KeyDeleted       = "deleted"
	KeyErrorPrefix   = "error_prefix"
	KeyLobbyTitle    = "lobby_title"
	KeyMenuUsers     = "menu_users"
	KeyMenuSongs     = "menu_songs"
	KeyMenuPlaylists = "menu_playlists"

	KeyLoginTitle     = "login_title"
	KeyEmailLabel     = "email_label"
	KeyUnknownEmail   = "unknown_email"
	KeyInvalidEmail   = "invalid_email"
	KeyWelcome        = "welcome"
	KeyUsersTitle     = "users_title"
	KeyAddUserTitle   = "add_user_title"
	KeyEditUserTitle  = "edit_user_title"
	KeyNameLabel      = "name_label"
	KeySurnameLabel   = "surname_label"
	KeyCategoryLabel  = "category_label"
	KeyRoleLabel      = "role_label"
	KeyPhotoLabel     = "photo_label"
	KeySongsTitle     = "songs_title"
	KeyAddSongTitle   = "add_song_title"
	KeyEditSongTitle  = "edit_song_title"
	KeyTitleLabel     = "title_label"
	KeyAuthorLabel    = "author_label"
	KeyDateLabel      = "date_label"
	KeyPlaylistsTitle = "playlists_title"
	KeyNewPlaylist    = "new_playlist_title"
	KeyPlaylistName   = "playlist_name_label"
	KeyFavourites     = "favourites"
	KeySongCount      = "song_count"
	KeyPickSongTitle  = "pick_song_title"
	KeySongAdded      = "song_added"
	KeySongRemoved    = "song_removed"
	KeyAlreadyAdded   = "already_added"

	KeyHelpAdd       = "help_add"
	KeyHelpEdit      = "help_edit"
	KeyHelpDelete    = "help_delete"
	KeyHelpOpen      = "help_open"
	KeyHelpRemove    = "help_remove"
	KeyHelpSave      = "help_save"
	KeyHelpNext      = "help_next"
	KeyHelpRole      = "help_role"
	KeyHelpBack      = "help_back"
	KeyHelpLogin     = "help_login"
	KeyHelpLogout    = "help_logout"
	KeyHelpQuit      = "help_quit"
	KeyHelpFavourite = "help_favourites"
)
