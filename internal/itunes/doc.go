// Package itunes reads track libraries exported as property lists.
//
// The expected layout is a top-level dictionary with a Tracks dictionary
// keyed by track ID:
//
//	<dict>
//	    <key>Tracks</key>
//	    <dict>
//	        <key>1234</key>
//	        <dict>
//	            <key>Name</key><string>Come Together</string>
//	            <key>Total Time</key><integer>259000</integer>
//	            <key>Album Rating</key><integer>80</integer>
//	        </dict>
//	    </dict>
//	</dict>
//
// XML, binary and OpenStep property lists are all accepted.
//
// Track fields are read with explicit presence checks: a missing key yields
// model.FieldAbsent and a value of the wrong type yields model.FieldMalformed.
// Neither is an error; callers decide which fields they need.
package itunes
