package site

// pageTemplate is the Go html/template for every generated page. The
// shell provides the collaborators the page script needs: sidebar toggle,
// overlay, nav region, content region, search input and clear-search
// control. data-base and data-live tell the script where to fetch
// fragments from and whether a live server is behind the page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-base="{{.BasePath}}" data-live="{{if .Live}}1{{else}}0{{end}}">
  ` + iconSprite + `
  <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
    <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
      <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
    </svg>
  </button>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h1 class="site-title">{{.SiteTitle}}</h1>
      <div class="search-box">
        <input type="search" id="search-input" placeholder="Search the menu..." autocomplete="off">
        <button type="button" id="clear-search" aria-label="Clear search">&times;</button>
      </div>
    </div>
    <div class="sidebar-nav" id="sidebar-nav">
      {{.NavHTML}}
    </div>
    {{if .HasAbout}}<div class="sidebar-footer"><a href="{{.BasePath}}about.html">About</a></div>{{end}}
  </nav>
  <div class="sidebar-overlay hidden" id="sidebar-overlay"></div>
  <main class="menu-content" id="menu-content">
    {{.ContentHTML}}
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// iconSprite holds the nav icon symbols referenced by <use href="#icon-...">.
const iconSprite = `<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">
    <symbol id="icon-coffee" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M17 8h1a4 4 0 1 1 0 8h-1"/><path d="M3 8h14v9a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4Z"/><line x1="6" y1="2" x2="6" y2="4"/><line x1="10" y1="2" x2="10" y2="4"/><line x1="14" y1="2" x2="14" y2="4"/></symbol>
    <symbol id="icon-utensils-crossed" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="m16 2-2.3 2.3a3 3 0 0 0 0 4.2l1.8 1.8a3 3 0 0 0 4.2 0L22 8"/><path d="M15 15 3.3 3.3a4.2 4.2 0 0 0 0 6l7.3 7.3c.7.7 2 .7 2.8 0L15 15Zm0 0 7 7"/><path d="m2.1 21.8 6.4-6.3"/></symbol>
    <symbol id="icon-beer" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M17 11h1a3 3 0 0 1 0 6h-1"/><path d="M9 12v6"/><path d="M13 12v6"/><path d="M5 8v12a2 2 0 0 0 2 2h8a2 2 0 0 0 2-2V8"/><path d="M5 8a4 4 0 0 1 10-2 3 3 0 0 1 2 2"/></symbol>
    <symbol id="icon-martini" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M8 22h8"/><path d="M12 11v11"/><path d="m19 3-7 8-7-8Z"/></symbol>
    <symbol id="icon-grape" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M22 5V2l-5.9 5.9"/><circle cx="16.6" cy="15.9" r="3"/><circle cx="9.4" cy="12.3" r="3"/><circle cx="12.9" cy="8.7" r="3"/><circle cx="6" cy="19.5" r="3"/></symbol>
    <symbol id="icon-concierge-bell" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M2 18a2 2 0 0 1 2-2h16a2 2 0 0 1 2 2v2H2Z"/><path d="M20 16a8 8 0 1 0-16 0"/><path d="M12 4v4"/><path d="M10 4h4"/></symbol>
    <symbol id="icon-flame" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M8.5 14.5A2.5 2.5 0 0 0 11 12c0-1.4-.5-2-1-3-1.1-2.2-.2-4.2 2-5 .5 2.5 2 4.9 4 6.5 2 1.6 3 3.5 3 5.5a7 7 0 1 1-14 0c0-1.2.5-2.3 1.5-3Z"/></symbol>
    <symbol id="icon-book-open" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/></symbol>
  </svg>`

// StyleCSS is the stylesheet emitted next to the generated pages and
// served directly in serve mode.
const StyleCSS = `:root {
  --bg: #fafaf7;
  --panel: #ffffff;
  --text: #2b2b28;
  --text-muted: #6c6a64;
  --border: #e3e1da;
  --accent: #7a5c3e;
  --accent-soft: #f1e9df;
  --danger: #b3402a;
  --warn: #8a6d1a;
  --sidebar-width: 270px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: Georgia, "Times New Roman", serif;
  background: var(--bg);
  color: var(--text);
  display: flex;
  min-height: 100vh;
}

/* Sidebar */
.sidebar {
  width: var(--sidebar-width);
  background: var(--panel);
  border-right: 1px solid var(--border);
  padding: 1.25rem 1rem;
  position: fixed;
  top: 0; bottom: 0; left: 0;
  overflow-y: auto;
  transition: transform .2s ease;
  z-index: 20;
}
.site-title { font-size: 1.3rem; margin: 0 0 1rem; letter-spacing: .02em; }

.search-box { display: flex; gap: .25rem; margin-bottom: 1rem; }
.search-box input {
  flex: 1;
  padding: .45rem .6rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  font: inherit;
  font-size: .85rem;
}
#clear-search {
  border: 1px solid var(--border);
  background: var(--panel);
  border-radius: 6px;
  cursor: pointer;
  width: 2rem;
  font-size: 1rem;
  color: var(--text-muted);
}

.nav-button {
  display: flex;
  align-items: center;
  gap: .6rem;
  width: 100%;
  text-align: left;
  padding: .55rem .7rem;
  margin-bottom: .15rem;
  border: none;
  border-radius: 8px;
  background: none;
  font: inherit;
  font-size: .9rem;
  color: var(--text-muted);
  cursor: pointer;
}
.nav-button:hover { background: var(--accent-soft); color: var(--text); }
.nav-button.active { background: var(--accent-soft); color: var(--accent); font-weight: bold; }
.nav-icon { flex-shrink: 0; }

.sidebar-footer { margin-top: 1.5rem; font-size: .8rem; }
.sidebar-footer a { color: var(--text-muted); }

.sidebar-overlay {
  position: fixed; inset: 0;
  background: rgba(0,0,0,.35);
  z-index: 10;
}
.sidebar-overlay.hidden { display: none; }

.menu-toggle {
  display: none;
  position: fixed;
  top: .75rem; left: .75rem;
  z-index: 30;
  border: 1px solid var(--border);
  background: var(--panel);
  border-radius: 8px;
  padding: .35rem;
  cursor: pointer;
}

/* Content region */
.menu-content {
  margin-left: var(--sidebar-width);
  flex: 1;
  padding: 2rem 2.5rem;
  max-width: 840px;
  overflow-y: auto;
}

.category-title { font-size: 1.7rem; margin: 0 0 .25rem; }
.category-subtitle { color: var(--text-muted); margin: 0 0 1.4rem; font-size: .9rem; }
.results-header { font-size: 1.25rem; margin: 0 0 1rem; }

.menu-section { margin-bottom: 1.8rem; }
.section-title {
  font-size: 1.1rem;
  margin: 0 0 .75rem;
  padding-bottom: .4rem;
  border-bottom: 1px solid var(--border);
}

.item-group {
  background: var(--panel);
  border: 1px solid var(--border);
  border-radius: 10px;
  overflow: hidden;
}

.menu-item-container { border-bottom: 1px solid var(--border); }
.menu-item-container:last-child { border-bottom: none; }

.menu-item {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: .8rem 1rem;
}
.menu-item.has-details { cursor: pointer; }
.menu-item.has-details:hover { background: var(--accent-soft); }
.item-name h4 { margin: 0; font-size: 1rem; font-weight: 500; }
.item-meta { display: flex; align-items: center; gap: .6rem; flex-shrink: 0; }
.item-price { font-weight: bold; font-size: .9rem; }
.item-abv { color: var(--text-muted); font-size: .8rem; }

.chevron-icon { transition: transform .15s ease; color: var(--text-muted); }
.details-visible .chevron-icon { transform: rotate(180deg); }

.item-details { display: none; padding: 0 1rem .9rem; font-size: .9rem; }
.details-visible .item-details { display: block; }
.item-subname { color: var(--text-muted); font-style: italic; font-size: .8rem; margin: .2rem 0; }
.item-tagline { color: var(--accent); margin: .2rem 0 .5rem; }
.item-details p { margin: .25rem 0; }
.detail-label { color: var(--text-muted); font-weight: bold; }
.item-about, .item-farming { font-size: .8rem; color: var(--text-muted); }
.item-note { color: var(--accent); font-size: .85rem; margin-top: .6rem; }

.item-badges { margin-top: .5rem; }
.badge {
  display: inline-block;
  font-size: .72rem;
  padding: .2rem .6rem;
  border-radius: 999px;
  margin: 0 .35rem .25rem 0;
}
.badge-allergens { background: #f7dfd8; color: var(--danger); }
.badge-dietary { background: #f3ecd2; color: var(--warn); }

/* Notices */
.notice { color: var(--text-muted); font-style: italic; }
.notice-error { color: var(--danger); font-style: normal; }
.notice-loading { color: var(--warn); }
.notice-neutral { text-align: center; margin-top: 3rem; }

/* About page */
.about-content { line-height: 1.6; }

/* Small screens */
@media (max-width: 767px) {
  .menu-toggle { display: block; }
  .sidebar { transform: translateX(-100%); }
  .sidebar.open { transform: translateX(0); }
  .menu-content { margin-left: 0; padding: 3.5rem 1.25rem 1.5rem; }
}
`

// ScriptJS is the page script. It carries the interactive half of the
// app: detail toggling, sidebar show/hide, category selection and
// search, all delegated from data attributes the renderers emit.
const ScriptJS = `(function () {
  'use strict';

  var base = document.body.dataset.base || '';
  var live = document.body.dataset.live === '1';

  var sidebar = document.getElementById('sidebar');
  var overlay = document.getElementById('sidebar-overlay');
  var menuToggle = document.getElementById('menu-toggle');
  var sidebarNav = document.getElementById('sidebar-nav');
  var menuContent = document.getElementById('menu-content');
  var searchInput = document.getElementById('search-input');
  var clearSearch = document.getElementById('clear-search');

  var searchIndex = null; // lazily fetched in static mode

  var FATAL = '<p class="notice notice-error">Error: could not load menu data. Please try refreshing the page.</p>';
  var NEUTRAL = '<div class="notice notice-neutral">Select a category from the sidebar or use the search bar.</div>';

  function escapeHtml(str) {
    if (!str) return '';
    return String(str).replace(/[&<>"']/g, function (ch) {
      return { '&': '&amp;', '<': '&lt;', '>': '&gt;', '"': '&#34;', "'": '&#39;' }[ch];
    });
  }

  function toggleSidebar() {
    sidebar.classList.toggle('open');
    overlay.classList.toggle('hidden');
  }

  function closeSidebarOnSmallScreen() {
    if (window.innerWidth < 768 && sidebar.classList.contains('open')) {
      toggleSidebar();
    }
  }

  // Shared toggle entry point: resolve the detail block, flip the
  // visibility flag on its enclosing item container. Unresolvable ids
  // are ignored.
  function toggleItemDetails(detailsId) {
    var details = document.getElementById(detailsId);
    var container = details ? details.closest('.menu-item-container') : null;
    if (container) {
      container.classList.toggle('details-visible');
    }
  }

  function markActive(categoryKey) {
    var buttons = sidebarNav.querySelectorAll('.nav-button');
    for (var i = 0; i < buttons.length; i++) {
      buttons[i].classList.toggle('active', buttons[i].dataset.category === categoryKey);
    }
  }

  function showContent(html) {
    menuContent.innerHTML = html;
    menuContent.scrollTop = 0;
    window.scrollTo(0, 0);
  }

  function fragmentURL(key) {
    return live ? base + 'api/menus/' + encodeURIComponent(key)
                : base + 'fragments/' + encodeURIComponent(key) + '.html';
  }

  function selectCategory(key) {
    searchInput.value = '';
    fetch(fragmentURL(key))
      .then(function (res) {
        if (!res.ok) throw new Error('HTTP ' + res.status);
        return res.text();
      })
      .then(function (html) {
        showContent(html);
        markActive(key);
        closeSidebarOnSmallScreen();
      })
      .catch(function (err) {
        console.error('Failed to load menu data:', err);
        showContent(FATAL);
      });
  }

  function renderResults(term, entries) {
    if (entries.count > 0) {
      showContent('<h2 class="results-header">Search Results (' + entries.count + ') for "' +
        escapeHtml(term) + '"</h2><div class="item-group">' + entries.html + '</div>');
    } else {
      showContent('<p class="notice notice-empty">No items found matching "' + escapeHtml(term) + '".</p>');
    }
    markActive(null);
  }

  function searchStatic(term) {
    var needle = term.trim().toLowerCase();
    var loaded = searchIndex
      ? Promise.resolve(searchIndex)
      : fetch(base + 'search-index.json').then(function (res) {
          if (!res.ok) throw new Error('HTTP ' + res.status);
          return res.json();
        }).then(function (idx) { searchIndex = idx; return idx; });

    loaded.then(function (idx) {
      var html = '';
      var count = 0;
      for (var i = 0; i < idx.length; i++) {
        if (idx[i].text.indexOf(needle) !== -1) {
          html += idx[i].html;
          count++;
        }
      }
      renderResults(term, { html: html, count: count });
    }).catch(function (err) {
      console.error('Failed to load menu data:', err);
      showContent(FATAL);
    });
  }

  function searchLive(term) {
    fetch(base + 'api/search?q=' + encodeURIComponent(term))
      .then(function (res) {
        if (!res.ok) throw new Error('HTTP ' + res.status);
        return res.json();
      })
      .then(function (body) {
        showContent(body.html);
        markActive(null);
      })
      .catch(function (err) {
        console.error('Search failed:', err);
        showContent(FATAL);
      });
  }

  function runSearch(raw) {
    if (!raw.trim()) {
      showContent(NEUTRAL);
      markActive(null);
      return;
    }
    if (live) {
      searchLive(raw);
    } else {
      searchStatic(raw);
    }
  }

  // Delegated listeners. The rendered markup carries only data
  // attributes, never inline handlers.
  menuContent.addEventListener('click', function (e) {
    var header = e.target.closest('[data-details-id]');
    if (header) toggleItemDetails(header.dataset.detailsId);
  });
  menuContent.addEventListener('keydown', function (e) {
    if (e.key !== 'Enter' && e.key !== ' ') return;
    var header = e.target.closest('[data-details-id]');
    if (header) {
      toggleItemDetails(header.dataset.detailsId);
      e.preventDefault();
    }
  });

  sidebarNav.addEventListener('click', function (e) {
    var button = e.target.closest('.nav-button');
    if (button) selectCategory(button.dataset.category);
  });

  if (menuToggle) menuToggle.addEventListener('click', toggleSidebar);
  if (overlay) overlay.addEventListener('click', toggleSidebar);

  searchInput.addEventListener('input', function (e) {
    runSearch(e.target.value);
  });
  clearSearch.addEventListener('click', function () {
    searchInput.value = '';
    runSearch('');
  });

  // Live reload: the server pushes a message when the catalog changes.
  if (live && 'WebSocket' in window) {
    try {
      var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(proto + location.host + '/ws/reload');
      ws.onmessage = function () { location.reload(); };
    } catch (err) {
      // Reload socket is best effort only.
    }
  }
})();
`
